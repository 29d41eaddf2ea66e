// Package diagnostic provides structured errors and warnings for the index
// generator host.
//
// A generation run collects every problem it finds across all directives
// (syntax errors, bad directive options, invalid configuration, formatting
// failures) before reporting, so one run shows all of them. Each diagnostic
// carries a code, a source position when one is known, and optional
// suggestions for likely typos.
package diagnostic

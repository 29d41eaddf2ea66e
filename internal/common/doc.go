// Package common holds small helpers shared across the generator packages.
package common

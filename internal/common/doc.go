// Package common holds small generic helpers shared by the schema compiler
// and the source adapters.
package common

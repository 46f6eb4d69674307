// Package domain defines the core business entities of the vocabulary
// acquisition engine and their validation rules.
package domain

// Package transform sanitizes submitted values. Sanitizing never validates
// and never fails: it only removes or encodes characters that are not
// allowed for a kind of value.
package transform

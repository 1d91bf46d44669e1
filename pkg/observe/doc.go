// Package observe provides ready-made handler sets for the retry executor:
// a logging set that reports every classified attempt through a Logger, and
// an in-memory recorder that keeps the attempt history of an execution.
package observe

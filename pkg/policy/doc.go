// Package policy loads declarative retry settings from YAML or .env style
// files and bridges them into validated retry configurations.
package policy

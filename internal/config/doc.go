// Package config reads and writes the CLI configuration file
// (~/.mobiforge/config.yaml) through Viper, with environment variable
// overrides under the MOBIFORGE_ prefix. Recognized keys override the
// embedded profile defaults: github_username, repo_name, and workspace.
package config

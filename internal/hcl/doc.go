// Package hcl provides the HCL implementation of config.Loader.
package hcl

// Package yamlfile reads inventories and sparse flow matrices from YAML and
// writes resolved paths back as YAML.
package yamlfile

// Package formfile loads pre-filled chart forms from YAML files or Excel
// workbooks, and describes the YAML layout with a JSON schema.
package formfile

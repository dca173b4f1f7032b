// Package validation checks inbound request payloads against ordered tables
// of field rules before they reach the command handlers.
//
// Every field is optional. A present field must have the declared JSON type
// and, for strings, fit the declared length. Rules are checked in table
// order and the first violation is returned; later fields are not looked at.
// JSON null counts as absent.
package validation

package nskeyed

import "strings"

// nsPrefix is the field-name prefix that expands to a dotted archive key.
// The rule has no escape mechanism: a field whose name legitimately starts
// with "NS" but must not dot-expand needs an `archive:"..."` tag override.
const nsPrefix = "NS"

// ArchiveKey translates a declared field name to the archive key used on
// the wire. Names beginning with "NS" become "NS." plus the remainder;
// all other names map to themselves.
func ArchiveKey(fieldName string) string {
	if strings.HasPrefix(fieldName, nsPrefix) {
		return nsPrefix + "." + fieldName[len(nsPrefix):]
	}
	return fieldName
}

// FieldName is the inverse of ArchiveKey: "NS.xxx" becomes "NSxxx", every
// other key maps to itself. ArchiveKey and FieldName form a bijection per
// record type; the Archiver rejects types whose fields collide on a key.
func FieldName(archiveKey string) string {
	if strings.HasPrefix(archiveKey, nsPrefix+".") {
		return nsPrefix + archiveKey[len(nsPrefix)+1:]
	}
	return archiveKey
}

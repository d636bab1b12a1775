package languages

import "strings"

// QualifyName joins a namespace and a class name the way PHP spells a fully
// qualified class name, without the leading backslash.
func QualifyName(namespace, name string) string {
	namespace = strings.Trim(strings.TrimSpace(namespace), `\`)
	name = strings.TrimSpace(name)
	if namespace == "" {
		return name
	}
	return namespace + `\` + name
}

package strings

import "github.com/iancoleman/strcase"

func ToSnakeCase(s string) string {
	return strcase.ToSnake(s)
}

func ToScreamingSnakeCase(s string) string {
	return strcase.ToScreamingSnake(s)
}

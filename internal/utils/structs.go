package utils

import (
	"fmt"
	"reflect"
)

var (
	ColumnTag = "db"
	FormTag   = "form"
)

func StructTagValues(input any) []string {

	targetValue := structValue(input)
	targetType := targetValue.Type()

	result := make([]string, 0, targetValue.NumField())

	for i := 0; i < targetValue.NumField(); i++ {

		if targetType.Field(i).PkgPath != "" {
			continue
		}

		tagValue := targetType.Field(i).Tag.Get(ColumnTag)
		if tagValue == "" || tagValue == "-" {
			continue
		}

		result = append(result, tagValue)

	}

	return result

}

func StructToMap(input any) map[string]any {
	return tagMap(input, ColumnTag, false)
}

// FormToMap keys the struct's fields by their form tag. Nil pointer fields
// were not submitted and are left out, everything else is dereferenced.
func FormToMap(input any) map[string]any {
	return tagMap(input, FormTag, true)
}

func tagMap(input any, tag string, deref bool) map[string]any {

	result := make(map[string]any)

	itemValue := structValue(input)
	itemType := itemValue.Type()

	for i := 0; i < itemValue.NumField(); i++ {

		if itemType.Field(i).PkgPath != "" {
			continue
		}

		tagValue := itemType.Field(i).Tag.Get(tag)
		if tagValue == "" || tagValue == "-" {
			continue
		}

		field := itemValue.Field(i)
		if deref && field.Kind() == reflect.Ptr {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}

		result[tagValue] = field.Interface()

	}

	return result

}

func structValue(input any) reflect.Value {
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	return v
}

func ErrorWrapOrNil(err error, msg string) error {
	if err == nil {
		return nil
	}

	if msg == "" {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)

}

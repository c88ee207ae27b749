package remap

// tableMapper is a domain-separated lookup used across this package's tests.
type tableMapper struct {
	classes map[string]string
	methods map[string]string
	fields  map[string]string
}

func lookup(m map[string]string, k string) string {
	if v, ok := m[k]; ok {
		return v
	}

	return k
}

func (t tableMapper) MapType(name string) string { return lookup(t.classes, name) }
func (t tableMapper) MapMethodName(_, name, _ string) string { return lookup(t.methods, name) }
func (t tableMapper) MapInvokeDynamicMethodName(name, _ string) string { return lookup(t.methods, name) }
func (t tableMapper) MapFieldName(_, name, _ string) string { return lookup(t.fields, name) }
func (t tableMapper) MapRecordComponentName(_, name, _ string) string { return lookup(t.fields, name) }
func (t tableMapper) MapAnnotationAttributeName(_, name string) string { return lookup(t.methods, name) }

func testMapper() tableMapper {
	return tableMapper{
		classes: map[string]string{
			"a/Old":       "b/New",
			"a/Old$Inner": "b/New$Renamed",
			"a/Api":       "b/Api",
			"a/Ann":       "b/Ann2",
			"a/Elem":      "b/Elem2",
		},
		methods: map[string]string{
			"baz":      "qux",
			"func_1_a": "tick",
			"mode":     "style",
		},
		fields: map[string]string{
			"foo":       "bar",
			"field_2_b": "world",
		},
	}
}

package ofx

// ExportJSON returns the JSON rendition of v, a pointer to a registered
// aggregate.
//
// The document is an object with a single key, the tag of v. Aggregates
// become objects whose keys are the wire tags, in wire order. Elements hold
// their wire text. Repeated aggregates become arrays, even when there is
// only one.
func ExportJSON(v any) ([]byte, error) { return Schemas.ExportJSON(v) }

// ExportJSON is like the package function ExportJSON, using r.
func (r *Registry) ExportJSON(v any) ([]byte, error) {
	s, err := r.schemaOf(v)
	if err != nil {
		return nil, err
	}
	var w jsonObjectWriter
	w.Append(s.name, r.jsonObject(v, s))
	return w.MarshalJSON()
}

func (r *Registry) jsonObject(v any, s *Schema) *jsonObjectWriter {
	w := new(jsonObjectWriter)
	for _, f := range s.fields {
		switch f.kind {
		case elementKind:
			if text, ok := f.format(v); ok {
				w.Append(f.tag, text)
			}

		case childKind, childrenKind:
			items := f.items(v)
			if len(items) == 0 {
				continue
			}
			objects := make([]*jsonObjectWriter, len(items))
			for i, item := range items {
				ns, err := r.schemaOf(item)
				if err != nil {
					return w.Fail(err)
				}
				objects[i] = r.jsonObject(item, ns)
			}
			if f.kind == childKind {
				w.Append(r.name(f), objects[0])
			} else {
				w.Append(r.name(f), objects)
			}

		case oneOfKind:
			// one array per variant, in order of first appearance
			var tags []string
			groups := make(map[string][]*jsonObjectWriter)
			for _, item := range f.items(v) {
				ns, err := r.schemaOf(item)
				if err != nil {
					return w.Fail(err)
				}
				if _, ok := groups[ns.name]; !ok {
					tags = append(tags, ns.name)
				}
				groups[ns.name] = append(groups[ns.name], r.jsonObject(item, ns))
			}
			for _, tag := range tags {
				w.Append(tag, groups[tag])
			}
		}
	}
	return w
}

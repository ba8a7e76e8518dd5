package interpreter

// operationSet holds the operations of a single content type in
// definition order.
type operationSet struct {
	order []string
	funcs map[string]OperationFunc
}

// Registry is the fixed dispatch table from content type and operation
// name to formatting function. The key set is built once and never
// mutated, so lookups are safe from concurrent handlers.
type Registry struct {
	order []ContentType
	sets  map[ContentType]*operationSet
}

// NewRegistry builds the full operation table.
func NewRegistry() *Registry {
	r := &Registry{
		sets: make(map[ContentType]*operationSet),
	}

	r.register(ContentTypeText, "summarize", summarizeText)
	r.register(ContentTypeText, "expand", expandText)
	r.register(ContentTypeText, "transform", transformText)

	r.register(ContentTypeCode, "explain", explainCode)
	r.register(ContentTypeCode, "optimize", optimizeCode)
	r.register(ContentTypeCode, "debug", debugCode)

	r.register(ContentTypeCreative, "story", storyFromPrompt)
	r.register(ContentTypeCreative, "poem", poemFromPrompt)
	r.register(ContentTypeCreative, "ideas", ideasFromPrompt)

	return r
}

func (r *Registry) register(ct ContentType, name string, fn OperationFunc) {
	set, ok := r.sets[ct]
	if !ok {
		set = &operationSet{funcs: make(map[string]OperationFunc)}
		r.sets[ct] = set
		r.order = append(r.order, ct)
	}
	set.order = append(set.order, name)
	set.funcs[name] = fn
}

// HasContentType reports whether the content type is known.
func (r *Registry) HasContentType(contentType string) bool {
	_, ok := r.sets[ContentType(contentType)]
	return ok
}

// ContentTypes returns the known content types in definition order.
func (r *Registry) ContentTypes() []string {
	out := make([]string, 0, len(r.order))
	for _, ct := range r.order {
		out = append(out, string(ct))
	}
	return out
}

// Operations returns the operation names defined for the content type in
// definition order, or nil if the content type is unknown.
func (r *Registry) Operations(contentType string) []string {
	set, ok := r.sets[ContentType(contentType)]
	if !ok {
		return nil
	}
	out := make([]string, len(set.order))
	copy(out, set.order)
	return out
}

// Lookup returns the formatting function for the given content type and
// operation name.
func (r *Registry) Lookup(contentType, operation string) (OperationFunc, bool) {
	set, ok := r.sets[ContentType(contentType)]
	if !ok {
		return nil, false
	}
	fn, ok := set.funcs[operation]
	return fn, ok
}

// List returns the registry contents as content type to ordered operation
// names, suitable for the operations listing endpoint.
func (r *Registry) List() map[string][]string {
	out := make(map[string][]string, len(r.order))
	for _, ct := range r.order {
		out[string(ct)] = r.Operations(string(ct))
	}
	return out
}

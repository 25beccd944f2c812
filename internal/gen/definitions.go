package gen

// definitions is an insertion-ordered map of code emitted ahead of the
// program body. Overwriting a key keeps its position.
type definitions struct {
	keys   []string
	values map[string]string
}

func newDefinitions() *definitions {
	return &definitions{values: make(map[string]string)}
}

func (d *definitions) Set(key, code string) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = code
}

func (d *definitions) Get(key string) (string, bool) {
	code, ok := d.values[key]
	return code, ok
}

func (d *definitions) Len() int {
	return len(d.keys)
}

func (d *definitions) Values() []string {
	out := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.values[k])
	}
	return out
}

func (d *definitions) Reset() {
	d.keys = nil
	d.values = make(map[string]string)
}

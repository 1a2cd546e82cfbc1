package types

// Fields - множество JSON-ключей, которые клиент реально прислал в PUT.
type Fields map[string]struct{}

func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

package jsonmodel

//Option transformer option
type Option func(t *Transformer)

//Options represents transformer options
type Options []Option

//Apply applies options
func (o Options) Apply(t *Transformer) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(t)
	}
}

//WithDateLayout overrides the layout the built-in date encoder uses
func WithDateLayout(layout string) Option {
	return func(t *Transformer) {
		t.dateLayout = layout
	}
}

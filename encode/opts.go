package encode

type EncodeOption func(*EncState)

// EncodeColors colors the output of Encode. Stringify ignores it.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeNL terminates the output of Encode with a newline.
func EncodeNL(v bool) EncodeOption {
	return func(es *EncState) { es.nl = v }
}

// MaxSize limits the buffer allocated by Stringify and Encode to n
// bytes, terminating sentinel included. n <= 0 means no limit.
func MaxSize(n int) EncodeOption {
	return func(es *EncState) { es.maxSize = n }
}

package misc

type Thing struct{}

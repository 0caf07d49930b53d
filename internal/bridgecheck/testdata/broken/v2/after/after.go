package after

type Moved struct{}

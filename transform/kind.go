package transform

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // zero value marks an undescribed property

	KindData   // resolved through the transformer fold
	KindMethod // bound callable, passed through untouched
)

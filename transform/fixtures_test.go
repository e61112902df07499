package transform_test

type immutableObject struct {
	One   string
	Two   string
	Three string
}

func (o *immutableObject) Method() {}

type mutableObject struct {
	One       string
	Two       string
	WasCalled bool
}

func (mutableObject) MutableProperties() []string {
	return []string{"One", "Two"}
}

func (o *mutableObject) Method() {
	o.WasCalled = true
}

type childMutableObject struct {
	mutableObject
}

func newImmutable() *immutableObject {
	return &immutableObject{One: "foo", Two: "bar", Three: "baz"}
}

func newMutable() *mutableObject {
	return &mutableObject{One: "baz", Two: "foobar"}
}

type entity struct {
	ID    string
	Alive bool
	Level int
}

func (e *entity) Kill() {
	e.Alive = false
}

func (e *entity) Describe(prefix string, tags ...string) string {
	out := prefix + e.ID
	for _, t := range tags {
		out += "#" + t
	}

	return out
}

type unit struct {
	entity

	Name   string
	Health int
	// Level shadows entity.Level.
	Level  int
	Tags   []string `transform:",hidden"`
	Cache  int      `transform:"-"`
	OnHit  func(int) int
	OnHeal func(int) int
	Owner  any

	secret string
}

func (u *unit) Hit(damage int) {
	u.Health -= damage
	if u.Health <= 0 {
		u.Kill()
	}
}

func newUnit() *unit {
	return &unit{
		entity: entity{ID: "orc-1", Alive: true, Level: 1},
		Name:   "Orc",
		Health: 10,
		Level:  3,
		OnHit:  func(d int) int { return d * 2 },
		secret: "hidden",
	}
}

type linked struct {
	*entity

	Name string
}

type meleeStats struct {
	Strike int
}

type meleeMoves struct{}

func (meleeMoves) Strike() string { return "inner" }

// brawler declares Strike itself, shadowing both embedded declarations.
type brawler struct {
	meleeStats
	meleeMoves
}

func (*brawler) Strike() string { return "outer" }

type veteran struct {
	entity

	Rank int
}

func (v *veteran) Describe(prefix string, tags ...string) string {
	return "veteran " + v.entity.Describe(prefix, tags...)
}

type leftHand struct {
	Grip int
	Left string
}

type rightHand struct {
	Grip  int
	Right string
}

type dualWield struct {
	leftHand
	rightHand

	Name string
}

type steadied struct {
	dualWield

	Grip int
}

type gear struct {
	Weight int
}

type pack struct{ gear }

type belt struct{ gear }

type loadout struct {
	pack
	belt
}

package transform_test

import (
	"fmt"

	"transformable/transform"
)

type Hero struct {
	Name     string
	Strength int
	Poisoned bool
}

func (Hero) MutableProperties() []string { return []string{"Poisoned"} }

func (h *Hero) Cure() { h.Poisoned = false }

func ExampleWrap() {
	buffs := transform.NewRegistry()

	hero := &Hero{Name: "Ayla", Strength: 10}
	wrapped, err := transform.Wrap(hero, buffs)
	if err != nil {
		panic(err)
	}

	potion := transform.MustNew(wrapped, "Strength", 0, func(current, _ int, _ *transform.Wrapper, _ string) int {
		return current + 5
	})
	curse := transform.MustNew(wrapped, "Strength", 10, func(current, _ int, _ *transform.Wrapper, _ string) int {
		return current / 2
	})

	buffs.Add(potion).Add(curse)
	fmt.Println(transform.MustValue[int](wrapped, "Strength"))

	buffs.Remove(curse)
	strength := transform.MustValue[int](wrapped, "Strength")
	fmt.Println(strength, hero.Strength)

	fmt.Println(wrapped.Set("Strength", 99))
	err = wrapped.Set("Poisoned", true)
	fmt.Println(err, hero.Poisoned)

	_, _ = wrapped.Call("Cure")
	fmt.Println(hero.Poisoned, wrapped.Keys())

	// Output:
	// 10
	// 15 10
	// property "Strength": property is read-only
	// <nil> true
	// false [Name Strength Poisoned]
}

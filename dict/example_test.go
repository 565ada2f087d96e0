package dict_test

import (
	"fmt"

	"github.com/pengdafu/containers/dict"
)

func Example() {
	d := dict.New[string, string]()

	d.Insert("22", "Jane")
	d.Insert("22", "Mary")
	d.Insert("0", "Harold")
	d.Insert("9", "Edward")
	d.Insert("37", "Victoria")
	d.Insert("4", "Matilda")
	d.Insert("26", "Oliver")
	d.Insert("42", "Elizabeth")
	d.Insert("19", "Henry")
	d.Insert("4", "Stephen")
	d.Insert("24", "James")
	d.Insert("-1", "Edward")
	d.Insert("31", "Anne")
	d.Insert("23", "Elizabeth")
	d.Insert("1", "William")
	d.Insert("26", "Charles")

	fmt.Println("---Dict---")
	d.Display()

	// Output:
	// ---Dict---
	// 22 : Jane
	// 0 : Harold
	// 9 : Edward
	// 37 : Victoria
	// 4 : Matilda
	// 26 : Oliver
	// 42 : Elizabeth
	// 19 : Henry
	// 24 : James
	// -1 : Edward
	// 31 : Anne
	// 23 : Elizabeth
	// 1 : William
}

func ExampleDict_Remove() {
	d := dict.New[string, string]()
	d.Insert("0", "Harold")
	d.Insert("9", "Edward")

	fmt.Println(d.Remove("0"), d.Remove("0"))
	fmt.Println(d.Lookup("0") == nil, *d.Lookup("9"))

	// Output:
	// true false
	// true Edward
}

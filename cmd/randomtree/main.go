package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"go.lepak.sg/keytree"
)

var (
	seed = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num  = flag.Int("n", 10, "number of records in the tree")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rd := rand.New(rand.NewSource(*seed))

	records := make([]any, *num)
	for i := range records {
		records[i] = map[string]any{
			"id":   i,
			"name": fmt.Sprintf("record-%03d", i),
		}
	}
	rd.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	tr := keytree.New()
	if err := tr.Init(records); err != nil {
		panic(err)
	}

	fmt.Println("tree:")
	fmt.Print(tr.String())
	fmt.Println("size:", tr.Size(), "height:", tr.Height())

	tr.Balance()

	fmt.Println("after balance:")
	fmt.Print(tr.String())
	fmt.Println("height:", tr.Height())

	inorder := make([]any, 0, *num)
	for v := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, v.(map[string]any)["id"])
	}
	fmt.Println("ids in order:", inorder)
}

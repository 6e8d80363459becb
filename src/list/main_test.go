package list

import (
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	rand.Seed(time.Now().UnixNano())
	fmt.Println("Running list tests.")
	os.Exit(m.Run())
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/milk9111/tween/prefabs"
	"github.com/milk9111/tween/script"
	"github.com/milk9111/tween/tween"
	"golang.design/x/clipboard"
)

func main() {
	name := flag.String("curve", "linear", "library curve or built-in easing name")
	scriptPath := flag.String("script", "", "sample a tengo curve file instead of a named curve")
	samples := flag.Int("n", 11, "number of samples over [0, 1]")
	copyOut := flag.Bool("copy", false, "copy the samples to the clipboard; waits until another program takes the clipboard over")
	list := flag.Bool("list", false, "list curve names and exit")
	dir := flag.String("prefabs", prefabs.Dir, "directory whose files override the embedded prefabs")
	flag.Parse()

	prefabs.Dir = *dir
	lib, err := prefabs.LoadLibrary()
	if err != nil {
		log.Fatal(err)
	}

	if *list {
		fmt.Println(strings.Join(lib.CurveNames(), "\n"))
		fmt.Println(strings.Join(tween.EasingNames(), "\n"))
		return
	}

	curve, label, err := pickCurve(lib, *name, *scriptPath)
	if err != nil {
		log.Fatal(err)
	}

	out := Sample(curve, *samples)
	fmt.Fprintf(os.Stderr, "curvesample: %s, %d samples\n", label, *samples)
	fmt.Print(out)

	if *copyOut {
		if err := clipboard.Init(); err != nil {
			log.Fatalf("curvesample: clipboard: %v", err)
		}
		changed := clipboard.Write(clipboard.FmtText, []byte(out))
		fmt.Fprintln(os.Stderr, "curvesample: copied; holding the clipboard until something else is copied (ctrl-c to quit)")
		<-changed
	}
}

func pickCurve(lib *prefabs.Library, name, scriptPath string) (tween.Curve, string, error) {
	if scriptPath == "" {
		c, err := lib.Curve(name)
		return c, name, err
	}
	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, "", err
	}
	c, err := script.Compile(scriptPath, src)
	return c, scriptPath, err
}

// Sample renders n evenly spaced "t,value" lines. n below 2 is raised to 2
// so both endpoints are always present.
func Sample(c tween.Curve, n int) string {
	if n < 2 {
		n = 2
	}
	var b strings.Builder
	b.WriteString("t,value\n")
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		fmt.Fprintf(&b, "%g,%g\n", t, c.Evaluate(t))
	}
	return b.String()
}

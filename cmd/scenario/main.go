// Command scenario runs a tengo-scripted collision scenario headlessly and
// prints whatever telemetry the script asks for. Useful for reproducing a
// collision sequence without the window.
package main

import (
	"flag"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/collider/prefabs"
)

func main() {
	scriptName := flag.String("script", "head_on.tengo", "scenario script in prefabs/scripts/ (or a path)")
	flag.Parse()

	src, err := prefabs.LoadScript(*scriptName)
	if err != nil {
		log.Fatalf("scenario: load script %s: %v", *scriptName, err)
	}

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatalf("scenario: load world spec: %v", err)
	}

	r := newRunner(spec)

	script := tengo.NewScript(src)
	if err := script.Add("world", r.engine()); err != nil {
		log.Fatalf("scenario: add engine: %v", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		log.Fatalf("scenario: compile %s: %v", *scriptName, err)
	}
	if err := compiled.Run(); err != nil {
		log.Fatalf("scenario: run %s: %v", *scriptName, err)
	}

	r.teardown()
}

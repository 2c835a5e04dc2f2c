// Package main provides the kernels CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/kernels/nn"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("kernels: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "Born kernels %s\n", version)
		return nil
	case "shapes":
		return runShapes(args[1:], out)
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// runShapes prints the convolution output size for one configuration.
func runShapes(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("shapes", flag.ContinueOnError)
	fs.SetOutput(out)
	h := fs.Int("h", 5, "Input height")
	w := fs.Int("w", 5, "Input width")
	kh := fs.Int("kh", 3, "Kernel height")
	kw := fs.Int("kw", 3, "Kernel width")
	ph := fs.Int("ph", 0, "Padding along height")
	pw := fs.Int("pw", 0, "Padding along width")
	sh := fs.Int("sh", 1, "Stride along height")
	sw := fs.Int("sw", 1, "Stride along width")
	if err := fs.Parse(args); err != nil {
		return err
	}

	hOut, wOut, err := nn.Conv2DOutputSize(*h, *w, *kh, *kw, nn.Padding{H: *ph, W: *pw}, nn.Stride{H: *sh, W: *sw})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "input (%d, %d) kernel (%d, %d) padding (%d, %d) stride (%d, %d) -> output (%d, %d)\n",
		*h, *w, *kh, *kw, *ph, *pw, *sh, *sw, hOut, wOut)
	return nil
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Born kernels - dense and convolution layer kernels")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  shapes     Compute convolution output size (-h -w -kh -kw -ph -pw -sh -sw)")
}

// Package main trains a feed-forward network on a synthetic bit-transform
// task and reports the mean error as it learns.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/born-ml/bnn/internal/dataset"
	"github.com/born-ml/bnn/internal/nn"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("bnn %s\n", version)
		return
	}

	bits := flag.Int("bits", 5, "Input/output width in bits")
	hidden := flag.String("hidden", "8", "Comma-separated hidden layer widths")
	epochs := flag.Int("epochs", 1000, "Number of training epochs")
	lr := flag.Float64("lr", nn.DefaultLR, "Learning rate")
	seed := flag.Uint64("seed", 1, "Seed for weight initialization")
	task := flag.String("task", "reverse", "Transform to learn: "+strings.Join(dataset.TransformNames(), ", "))
	report := flag.Int("report", 100, "Log the mean error every N epochs")
	show := flag.Int("show", 4, "Number of cases to print after training")
	flag.Parse()

	transform, err := dataset.ParseTransform(*task)
	if err != nil {
		log.Fatalf("Invalid task: %v", err)
	}
	set, err := dataset.BitTransform[float64](*bits, transform)
	if err != nil {
		log.Fatalf("Failed to build dataset: %v", err)
	}

	sizes, err := parseSizes(*bits, *hidden)
	if err != nil {
		log.Fatalf("Invalid -hidden: %v", err)
	}

	net, err := nn.New(nn.Config[float64]{
		Sizes:  sizes,
		Inner:  nn.Sigmoid[float64](),
		Outer:  nn.Sigmoid[float64](),
		LR:     *lr,
		Source: rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15),
	})
	if err != nil {
		log.Fatalf("Failed to create network: %v", err)
	}

	fmt.Printf("Task: %s, %d cases\n", *task, set.Len())
	fmt.Printf("Layers: %v, lr=%g, momentum=%g\n\n", sizes, *lr, nn.DefaultMomentum)

	if err := train(net, set, *epochs, *report); err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	fmt.Println()
	for i := 0; i < min(*show, set.Len()); i++ {
		if err := net.PrintCase(os.Stdout, set.Inputs[i], set.Targets[i]); err != nil {
			log.Fatalf("Failed to print case %d: %v", i, err)
		}
	}

	correct, err := accuracy(net, set)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}
	fmt.Printf("Exact matches: %d/%d\n", correct, set.Len())
}

// train runs Learn for the given number of epochs.
func train(net *nn.Network[float64], set *dataset.Set[float64], epochs, report int) error {
	for epoch := 1; epoch <= epochs; epoch++ {
		meanErr, err := net.Learn(set.Inputs, set.Targets)
		if err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if report > 0 && (epoch%report == 0 || epoch == 1 || epoch == epochs) {
			log.Printf("epoch %5d  mean error %.6f", epoch, meanErr)
		}
	}
	return nil
}

// accuracy counts cases whose thresholded output equals the target word.
func accuracy(net *nn.Network[float64], set *dataset.Set[float64]) (int, error) {
	correct := 0
	for i := range set.Inputs {
		out, err := net.Predict(set.Inputs[i])
		if err != nil {
			return 0, err
		}
		if dataset.Decode(out) == dataset.Decode(set.Targets[i]) {
			correct++
		}
	}
	return correct, nil
}

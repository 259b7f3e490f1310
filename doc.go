// Package signalsandslots provides an in-process typed event-dispatch toolkit:
// strongly-typed signals deliver emitted values to dynamically connected
// callbacks (slots) under selectable concurrency schemes. The library
// implements modern Go patterns including generics for type safety,
// functional options for configuration, and explicit lifecycle management
// for every background worker it spawns.
//
// # LLM Assistant Note
//
// This file serves as an index of all packages in the library, designed to
// help LLMs understand the complete codebase structure and functionality.
// Each package entry includes the full import path and a concise description
// of its purpose.
//
// # Package Organization
//
// The library is organized into two main categories:
//
//   - Core: the dispatch engine and its configuration layer
//   - Utilities: standalone concurrency primitives the engine is built on
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/simple555a/SignalsAndSlots/core/signal
//	go doc -all github.com/simple555a/SignalsAndSlots/pkg/workerpool
//
// # Core Packages
//
//	github.com/simple555a/SignalsAndSlots/core/signal    - Typed dispatch engine with four concurrency schemes
//	github.com/simple555a/SignalsAndSlots/core/config    - Type-safe environment variable loading
//
// # Utility Packages
//
// Standalone packages providing specific functionality:
//
//	github.com/simple555a/SignalsAndSlots/pkg/mpsc       - Unbounded many-producer/single-consumer FIFO queue
//	github.com/simple555a/SignalsAndSlots/pkg/semaphore  - Bounded counting semaphore for admission control
//	github.com/simple555a/SignalsAndSlots/pkg/workerpool - Fixed worker pool with a process-wide shared instance
//
// # Architecture Patterns
//
// The library follows these key architectural patterns:
//
//   - Generics for type-safe signal arguments
//   - Functional options for flexible configuration
//   - Explicit shutdown handshakes for every worker goroutine
//   - Backpressure over unbounded spawning for detached work
//
// # Example Usage
//
//	import (
//		"context"
//		"log"
//
//		"github.com/simple555a/SignalsAndSlots/core/signal"
//	)
//
//	type PriceUpdate struct {
//		Symbol string
//		Cents  int64
//	}
//
//	func main() {
//		sig := signal.New[PriceUpdate]()
//		defer sig.DisconnectAll()
//
//		// Ordered, non-overlapping delivery on a dedicated worker.
//		if _, err := sig.Connect(signal.Strand, func(p PriceUpdate) {
//			log.Printf("%s -> %d", p.Symbol, p.Cents)
//		}); err != nil {
//			log.Fatal(err)
//		}
//
//		// Fan out to the shared worker pool.
//		if _, err := sig.Connect(signal.Pooled, func(p PriceUpdate) {
//			// short, unordered work
//		}); err != nil {
//			log.Fatal(err)
//		}
//
//		if err := sig.Emit(context.Background(), PriceUpdate{Symbol: "ACME", Cents: 1099}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// For complete examples and detailed usage instructions, refer to the
// individual package documentation using the go doc command.
package signalsandslots

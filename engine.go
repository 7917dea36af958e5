package launcher

import (
	"context"
	"fmt"
	"log"

	gcache "github.com/Code-Hex/go-generics-cache"
)

// Engine renders and publishes speech pages off the UI thread.
type Engine struct {
	ctx       context.Context
	renderer  *Renderer
	publisher *Publisher
	errs      chan error
}

func New(ctx context.Context, publisher *Publisher) *Engine {
	return &Engine{
		ctx:       ctx,
		renderer:  NewRenderer(gcache.NewContext[string, string](ctx), Config.CacheTTL),
		publisher: publisher,
		errs:      make(chan error, 8),
	}
}

// Errors delivers failures of dispatched work to the UI.
func (e *Engine) Errors() <-chan error {
	return e.errs
}

// Speak starts one goroutine that renders text and publishes it.
// It never blocks and there is no way to cancel an in-flight call.
func (e *Engine) Speak(text string) {
	go func() {
		if err := e.publish(text); err != nil {
			log.Println(err)
			select {
			case e.errs <- err:
			case <-e.ctx.Done():
			}
		}
	}()
}

func (e *Engine) publish(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	path, err := e.publisher.Publish(e.renderer.Render(text))
	if err != nil {
		return err
	}
	log.Println("opened:", path)
	return nil
}

package state

import "context"

// request — сетевой запрос, который выполняется в фоне и опрашивается раз за кадр.
type request struct {
	done chan error
	// выбор в магазине, для которого отправлен запрос
	selection uint64
}

func startRequest(ctx context.Context, fn func(ctx context.Context) error) *request {
	r := &request{done: make(chan error, 1)}
	go func() {
		r.done <- fn(ctx)
	}()
	return r
}

// poll не блокирует: finished=false, пока запрос в полёте.
func (r *request) poll() (finished bool, err error) {
	select {
	case err := <-r.done:
		return true, err
	default:
		return false, nil
	}
}

package logging

import "log/slog"

func SessionID[T ~string](id T) slog.Attr {
	return slog.String("session_id", string(id))
}

func CheckoutID[T ~string](id T) slog.Attr {
	return slog.String("checkout_id", string(id))
}

func StepType[T ~string](stepType T) slog.Attr {
	return slog.String("step_type", string(stepType))
}

func Action(action string) slog.Attr {
	return slog.String("action", action)
}

func Error(err error) slog.Attr {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return slog.String("error", msg)
}

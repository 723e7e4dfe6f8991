package core

import (
	"strconv"
	"sync"
)

// CommandHandler executes one console command. args is the comma-separated
// argument list, already split and trimmed; empty tokens mean "keep the
// default". The returned string, if non-empty, is an informational line
// printed before the acknowledgement.
type CommandHandler func(args []string) (string, error)

// Command pairs a handler with its usage line.
type Command struct {
	Name    string
	Usage   string
	Handler CommandHandler
}

// CommandRegistry maps command names to handlers.
type CommandRegistry struct {
	mu    sync.RWMutex
	cmds  map[string]*Command
	names []string // registration order, for Usage
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{cmds: make(map[string]*Command)}
}

// Register adds a command. Re-registering a name replaces its handler.
func (r *CommandRegistry) Register(name, usage string, handler CommandHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cmds[name]; !exists {
		r.names = append(r.names, name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, Handler: handler}
}

// Dispatch runs the handler registered for name.
func (r *CommandRegistry) Dispatch(name string, args []string) (string, error) {
	r.mu.RLock()
	cmd, ok := r.cmds[name]
	r.mu.RUnlock()
	if !ok {
		return "", ErrUnknownCommand
	}
	return cmd.Handler(args)
}

// Usage returns the usage lines of all commands in registration order.
func (r *CommandRegistry) Usage() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := ""
	for _, name := range r.names {
		out += r.cmds[name].Usage + "\n"
	}
	return out
}

// RegisterMotionCommands registers the motor control commands against a
// controller. Argument lists are comma-separated with trailing arguments
// omittable; every token is parsed before any state is touched, so a
// malformed command leaves the motion state unchanged.
func RegisterMotionCommands(r *CommandRegistry, c *Controller) {
	// calibrate: declare the current position to be the origin.
	r.Register("calibrate", "calibrate", func(args []string) (string, error) {
		if len(args) != 0 {
			return "", ErrInvalidArgument
		}
		return "", c.Calibrate()
	})

	// configure [period_us][,scheme]: set tick period and/or scheme.
	r.Register("configure", "configure [<period_us>][,<scheme 0-3>]", func(args []string) (string, error) {
		if len(args) > 2 {
			return "", ErrInvalidArgument
		}
		var periodUS *uint32
		var scheme *int
		if len(args) > 0 && args[0] != "" {
			v, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return "", ErrInvalidArgument
			}
			p := uint32(v)
			periodUS = &p
		}
		if len(args) > 1 && args[1] != "" {
			v, err := strconv.Atoi(args[1])
			if err != nil {
				return "", ErrInvalidArgument
			}
			scheme = &v
		}
		return "", c.Configure(periodUS, scheme)
	})

	// move [position][,relative][,lock]: defaults to absolute 0, unlocked.
	r.Register("move", "move [<position>][,<relative 0|1>][,<lock 0|1>]", func(args []string) (string, error) {
		if len(args) > 3 {
			return "", ErrInvalidArgument
		}
		var target int32
		var relative, lock bool
		if len(args) > 0 && args[0] != "" {
			v, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return "", ErrInvalidArgument
			}
			target = int32(v)
		}
		if len(args) > 1 && args[1] != "" {
			v, err := strconv.ParseBool(args[1])
			if err != nil {
				return "", ErrInvalidArgument
			}
			relative = v
		}
		if len(args) > 2 && args[2] != "" {
			v, err := strconv.ParseBool(args[2])
			if err != nil {
				return "", ErrInvalidArgument
			}
			lock = v
		}
		return "", c.Move(target, relative, lock)
	})

	// status: report the motion state. Informational only.
	r.Register("status", "status", func(args []string) (string, error) {
		if len(args) != 0 {
			return "", ErrInvalidArgument
		}
		if !c.Enabled() {
			return "", ErrDisabled
		}
		info := "pos=" + itoa(int(c.Position())) +
			" target=" + itoa(int(c.Target())) +
			" phase=" + itoa(c.PhaseIndex()) +
			" scheme=" + itoa(c.SchemeIndex()) +
			" period_us=" + utoa(c.TickPeriodUS())
		if c.Idle() {
			info += " idle"
		} else {
			info += " stepping"
		}
		return info, nil
	})
}

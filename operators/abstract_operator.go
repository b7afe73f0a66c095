package operators

import (
	"github.com/hupe1980/colgo/storage"
)

// Operator is the abstract operator contract: Execute materializes the
// output exactly once, GetOutput hands it out afterwards. Operators form a
// tree through their input handles; only the left input is used by the
// operators implemented here.
type Operator interface {
	Execute() error
	GetOutput() (*storage.Table, error)
	LeftInput() Operator
	RightInput() Operator
}

// executor is the single hook a concrete operator implements.
type executor interface {
	onExecute() (*storage.Table, error)
}

type operatorState uint8

const (
	stateCreated operatorState = iota
	stateRunning
	stateDone
)

// BaseOperator carries the operator lifecycle state machine. Concrete
// operators embed it and provide the onExecute hook.
//
// Operators are not safe for concurrent use; the engine runs an operator
// tree on a single goroutine.
type BaseOperator struct {
	impl   executor
	left   Operator
	right  Operator
	state  operatorState
	output *storage.Table
}

// NewBaseOperator wires a concrete operator to its inputs.
func NewBaseOperator(impl executor, left, right Operator) BaseOperator {
	return BaseOperator{impl: impl, left: left, right: right}
}

// Execute runs the operator. Running twice fails with ErrAlreadyExecuted,
// re-entrant execution with ErrReentrant. A failed execution publishes no
// output and leaves the operator runnable again.
func (o *BaseOperator) Execute() error {
	switch o.state {
	case stateRunning:
		return ErrReentrant
	case stateDone:
		return ErrAlreadyExecuted
	}

	o.state = stateRunning
	output, err := o.impl.onExecute()
	if err != nil {
		o.state = stateCreated
		return err
	}
	o.output = output
	o.state = stateDone
	return nil
}

// GetOutput returns the output table of a successfully executed operator.
func (o *BaseOperator) GetOutput() (*storage.Table, error) {
	if o.state != stateDone {
		return nil, ErrNotExecuted
	}
	return o.output, nil
}

// LeftInput returns the left input operator, or nil for leaves.
func (o *BaseOperator) LeftInput() Operator { return o.left }

// RightInput returns the right input operator, or nil.
func (o *BaseOperator) RightInput() Operator { return o.right }

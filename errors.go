package microui

import "fmt"

// ContractError reports a violated API contract: a stack or buffer pushed
// past its fixed capacity, a pop with nothing on the stack, unbalanced
// begin/end pairs, or a missing required callback. These are programming
// errors in the embedding application, never recoverable runtime
// conditions, so the library raises them with panic. A host that prefers
// logging over crashing can recover the panic and inspect the value:
//
//	defer func() {
//	    var cerr *microui.ContractError
//	    if r := recover(); r != nil {
//	        if err, ok := r.(*microui.ContractError); ok {
//	            cerr = err
//	        } else {
//	            panic(r)
//	        }
//	    }
//	    ...
//	}()
//
// The UI state is undefined after a contract violation; the context must
// be discarded.
type ContractError struct {
	// Op names the operation that detected the violation.
	Op string
	// Msg describes the violated condition.
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("microui: %s: %s", e.Op, e.Msg)
}

// expect panics with a *ContractError unless cond holds.
func expect(cond bool, op, format string, args ...any) {
	if !cond {
		err := &ContractError{Op: op, Msg: fmt.Sprintf(format, args...)}
		logger.Error("contract violation", "op", err.Op, "msg", err.Msg)
		panic(err)
	}
}

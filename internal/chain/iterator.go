package chain

import (
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/pkg/errors"
)

// ErrNoMoreRecords - Returned by Records.Next when the chain is exhausted
var ErrNoMoreRecords = errors.New("no more records in chain")

// Records - Is used to iterate over the records of a chain one by one.
// The chain must not be modified while iterating.
type Records struct {
	current *entry
}

// newRecords - Returns a pointer to a new Records struct starting at the given entry
func newRecords(head *entry) *Records {

	return &Records{
		current: head,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.current != nil
}

// Next - Returns record.
// It returns:
//   - record is the next record in the chain.
//   - err is ErrNoMoreRecords if there are no more records when calling this function.
func (R *Records) Next() (record model.Record, err error) {
	if R.current == nil {
		err = ErrNoMoreRecords
		return
	}

	record = model.Record{Key: R.current.key, Value: R.current.value, Hash: R.current.hash}
	R.current = R.current.next

	return
}

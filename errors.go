package digest

import "github.com/pkg/errors"

// ErrBadConstruction is returned by NewDigester or NewSeq when k < 4,
// start >= len, or an unrecognized MinimizedHash is given.
var ErrBadConstruction = errors.New("digest: k must be >= 4 and start must be < len(seq)")

// ErrNotRolledTillEnd is returned by AppendSeq when the cursor has not
// yet rolled to the end of its current sequence.
var ErrNotRolledTillEnd = errors.New("digest: AppendSeq called before the cursor reached the end of the current sequence")

// BadModError is returned by NewModMin when the requested congruence
// is not smaller than the modulus.
type BadModError struct {
	Mod, Cong uint32
}

func (e *BadModError) Error() string {
	return errors.Errorf("digest: congruence %d must be less than mod %d", e.Cong, e.Mod).Error()
}

package dict

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/pengdafu/containers/util"
)

const entryFormat = "%v : %v\n"

// Display prints one "key : item" line per entry to standard output.
func (dict *Dict[K, V]) Display() {
	_ = dict.Fprint(os.Stdout)
}

// Fprint writes one "key : item" line per entry to w, head to tail.
func (dict *Dict[K, V]) Fprint(w io.Writer) error {
	iter := dict.iterator()
	for he := iter.Next(); he != nil; he = iter.Next() {
		line := fmt.Sprintf(entryFormat, he.key, he.val)
		if _, err := w.Write(util.String2Bytes(line)); err != nil {
			return errors.Wrapf(err, "display entry %v", he.key)
		}
	}
	return nil
}

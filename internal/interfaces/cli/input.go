package cli

import (
	"io"
	"strconv"
	"strings"
)

// prefixed antepone una línea de comando a la entrada del operador.
func prefixed(in io.Reader, line string) io.Reader {
	return io.MultiReader(strings.NewReader(line+"\n"), in)
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

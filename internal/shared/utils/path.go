package utils

import "fmt"

// AppendPath extends a materialized org tree path with one more node id.
// The root of the tree yields "/<id>".
func AppendPath(parentPath string, id uint) string {
	return fmt.Sprintf("%s/%d", parentPath, id)
}

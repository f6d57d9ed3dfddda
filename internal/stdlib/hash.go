package stdlib

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

// Hash builds the `hash` native module: content hashing plus
// github.com/google/uuid's random identifier generator, a teacher
// dependency given a concrete home here (SPEC_FULL.md §7).
func Hash() Module {
	s1 := []types.Type{types.String{}}

	sha256T, sha256V := fn("sha256", s1, types.String{}, hashSha256)
	md5T, md5V := fn("md5", s1, types.String{}, hashMd5)
	fnv32T, fnv32V := fn("fnv32", s1, types.Integer{}, hashFnv32)
	uuidT, uuidV := fn("uuid", nil, types.String{}, hashUUID)

	return Module{
		Name: "hash",
		Types: map[string]types.Type{
			"sha256": sha256T, "md5": md5T, "fnv32": fnv32T, "uuid": uuidT,
		},
		Values: map[string]evaluator.Value{
			"sha256": sha256V, "md5": md5V, "fnv32": fnv32V, "uuid": uuidV,
		},
	}
}

func hashSha256(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	s, ok := args[0].(evaluator.String)
	if !ok {
		return evaluator.NewError("sha256 requires a String argument")
	}
	sum := sha256.Sum256([]byte(s.Value))
	return evaluator.String{Value: hex.EncodeToString(sum[:])}
}

func hashMd5(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	s, ok := args[0].(evaluator.String)
	if !ok {
		return evaluator.NewError("md5 requires a String argument")
	}
	sum := md5.Sum([]byte(s.Value))
	return evaluator.String{Value: hex.EncodeToString(sum[:])}
}

func hashFnv32(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	s, ok := args[0].(evaluator.String)
	if !ok {
		return evaluator.NewError("fnv32 requires a String argument")
	}
	h := fnv.New32a()
	h.Write([]byte(s.Value))
	return evaluator.Integer{Value: int64(h.Sum32())}
}

func hashUUID(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	return evaluator.String{Value: uuid.NewString()}
}

// Package merge reconciles a base structure with an ordered list of patches.
//
// Structures are the values encoding/json and yaml.v3 decode into: nil, bool,
// numbers, strings, []any and map[string]any. A Patch is a closed variant built
// with Value, Delete, Seq, Map or Fn (or converted from a plain structure with From):
//
//	out := merge.Merge(doc,
//	    merge.Map(
//	        merge.Set("replicas", merge.Value(3)),
//	        merge.Set("debug", merge.Delete()),
//	        merge.Set("labels", merge.Map(merge.Set("tier", merge.Value("web")))),
//	        merge.Set("restarts", merge.Fn(func(cur any, _ merge.MergeFunc) any {
//	            n, _ := cur.(int)
//	            return n + 1
//	        })),
//	    ),
//	)
//
// Nested mappings merge key by key, everything else (including slices) replaces the
// current value. Under a []any result, keys are decimal indexes and Delete splices
// the element out. Merge never mutates its inputs and never fails.
package merge

// Package category models the product category tree that catdocs renders.
//
// A Tree is an adjacency list: every Node is keyed by id and lists its
// children by id, and RootIDs names the top-level entry points. The package
// decodes the tree from JSON, orders siblings with locale-aware collation,
// and inspects a tree for gaps (ids referenced but never defined), nodes that
// no root reaches, and cycles.
//
// Example input:
//
//	{
//	  "nodes": {
//	    "books":   {"id": "books", "title": "Books", "children": ["fiction"]},
//	    "fiction": {"id": "fiction", "title": "Fiction", "children": []}
//	  },
//	  "root_category_ids": ["books"]
//	}
package category

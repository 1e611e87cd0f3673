// Package traversal provides the four execution policies used to walk an
// index range in parallel (Sequenced, Fixed, Recursive, Dynamic), plus two
// higher-level scheduling primitives built on top of them: SlidingQueue, a
// multi-window append buffer used as a level-synchronous frontier, and
// WorkList, a per-vertex linked list of edge ranges with a self-stealing
// dynamic cursor.
//
// Both SlidingQueue and WorkList are domain-agnostic: they operate on plain
// int64 keys and ranges, leaving the caller (graph, bfs, components) to
// interpret what a key or a range index means.
package traversal

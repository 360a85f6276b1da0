/*
Package scene composes behaviors into trees of nodes.

A Node owns an ordered list of behaviors and an ordered list of child nodes.
A Container owns a list of root nodes. Start and Update walk the tree depth
first and, at every node, run the children before the node's own behaviors.
Both phases use the same order.

Scene trees are independent of depot worlds; a behavior that needs a world
keeps its own reference to one.
*/
package scene

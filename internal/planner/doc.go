// Package planner turns the selected file names into a RenamePlan: names are
// put in natural order and each is assigned the next zero-padded sequence
// number. Planning is pure; it never touches the filesystem and cannot fail.
package planner

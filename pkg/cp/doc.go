/*
Package cp implements the copy engine for gocp.

	            +--------------+
	            |   Operator   |
	            | (entry point)|
	            +------+-------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+------+            +-----+-----+
	|  file copy |            |   walk    |
	| (single)   |            | (recurse) |
	+-----+------+            +-----+-----+
	      |                         |
	      +-----------+-------------+
	                  |
	       +----------+----------+
	       | Classify / Resolve  |
	       |  / CopyContents     |
	       +---------------------+

🎯 Purpose:
- Validates source/destination shape (file→file, file→dir, dir→dir, dir→new)
- Walks directory trees depth-first, pre-order
- Resolves overwrite conflicts per entry (deny/force/ask)
- Reports a structured event for every entry visited

🔄 Flow:
1. Operator classifies the source and dispatches
2. The walk enumerates children, classifying each fresh
3. Existing destination files go through ResolveOverwrite
4. Confirmed files are touched then copied whole; events stream to the Reporter

⚡ Key Responsibilities:
- Per-entry copy/skip/recurse decisions
- Soft skips for denied overwrites inside a walk; hard error at the top level
- Propagating I/O failures untouched (they abort the run)

🤝 Collaborators:
- pkg/config: the immutable Policy
- Prompter: blocking yes/no questions in interactive mode
- Reporter: stream selection and verbosity gating live outside this package
*/
package cp

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const version = "0.3.0"

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **bagtree %s**

Count, compare and explore multisets of integers from the terminal.
Every set is an AVL tree that keeps one node per distinct element with its multiplicity.

Built with Go %s

# 1. Input files
* One or more integers per line, separated by spaces or commas
* `+"`7:3`"+` or `+"`7*3`"+` adds element 7 three times
* Everything after `+"`#`"+` on a line is a comment

# 2. Commands
* **print FILE** shows the set as {(element, count), ...}
* **stats FILE** shows distinct elements, total count, height, min and max
* **count FILE ITEM** shows how many times ITEM occurs
* **top FILE [-k N] [--chart]** lists the N most common elements
* **union|intersect|sum|diff A B** combines two sets
* **included A B** and **equals A B** compare two sets (exit status 1 when false)
* **find ITEM FILE...** lists files that contain ITEM
* **check FILE** verifies the tree invariants
* **browse FILE** walks the set element by element
* **shell** starts an interactive session with named sets

# 3. Set algebra
* Union keeps the larger count of each element
* Intersection keeps the smaller count of each shared element
* Sum adds counts, difference subtracts them and drops what reaches zero

# Please be aware
* Copy to clipboard in the browser on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// Copyright 2026 The Pathcast Authors
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

package pathcast_test

import (
	"fmt"

	"github.com/pathcast-dev/pathcast"
)

func ExampleParse() {
	tmpl, err := pathcast.Parse("/users/{id}/files/{*path}")
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	fmt.Println(tmpl.ParamCount())
	fmt.Println(tmpl.Captures())
	name, _ := tmpl.Wildcard()
	fmt.Println(name)
	// Output:
	// 2
	// [id]
	// path
}

func ExampleSerialize() {
	tmpl := pathcast.MustParse("/users/{id}/files/{*path}")

	path, err := pathcast.Serialize(tmpl, pathcast.Tuple{42, []string{"docs", "report.txt"}})
	if err != nil {
		fmt.Println("serialize failed:", err)
		return
	}

	fmt.Println(path)
	// Output: /users/42/files/docs/report%2Etxt
}

func ExampleSerialize_struct() {
	tmpl := pathcast.MustParse("/repos/{owner}/{name}")

	type repoArgs struct {
		Owner string `path:"owner"`
		Name  string `path:"name"`
	}

	path, err := pathcast.Serialize(tmpl, repoArgs{Owner: "pathcast-dev", Name: "pathcast"})
	if err != nil {
		fmt.Println("serialize failed:", err)
		return
	}

	fmt.Println(path)
	// Output: /repos/pathcast-dev/pathcast
}

func ExampleSerializer() {
	tmpl := pathcast.MustParse("/items/{id}")
	s := pathcast.NewSerializer(tmpl)

	for _, id := range []int{1, 2, 3} {
		if err := s.Serialize(id); err != nil {
			fmt.Println("serialize failed:", err)
			return
		}
		path, err := s.Finalize()
		if err != nil {
			fmt.Println("finalize failed:", err)
			return
		}
		fmt.Println(path)
	}
	// Output:
	// /items/1
	// /items/2
	// /items/3
}

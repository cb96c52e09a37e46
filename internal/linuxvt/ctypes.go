//go:build ignore
// +build ignore

// generate with: go tool cgo -godefs ctypes.go | gofmt > types.go

// Copyright 2018 Axel Wagner
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

package linuxvt

/*
#include <linux/kd.h>
*/
import "C"

const (
	KDSETMODE   = C.KDSETMODE
	KD_TEXT     = C.KD_TEXT
	KD_GRAPHICS = C.KD_GRAPHICS
)

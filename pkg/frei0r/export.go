//go:build cgo

package frei0r

/*
#include <stdint.h>
#include <stdlib.h>

#define FREI0R_MAJOR_VERSION 1

#define F0R_PLUGIN_TYPE_FILTER 0
#define F0R_COLOR_MODEL_RGBA8888 1
#define F0R_PARAM_STRING 4

typedef struct f0r_plugin_info {
	const char* name;
	const char* author;
	int plugin_type;
	int color_model;
	int frei0r_version;
	int major_version;
	int minor_version;
	int num_params;
	const char* explanation;
} f0r_plugin_info_t;

typedef struct f0r_param_info {
	const char* name;
	int type;
	const char* explanation;
} f0r_param_info_t;

typedef void* f0r_instance_t;
typedef void* f0r_param_t;
typedef char* f0r_param_string;

static inline f0r_instance_t handle_to_instance(uintptr_t h) { return (f0r_instance_t)h; }
static inline uintptr_t instance_to_handle(f0r_instance_t i) { return (uintptr_t)i; }
static inline char* param_string_get(f0r_param_t p) { return *(f0r_param_string*)p; }
static inline void param_string_set(f0r_param_t p, char* s) { *(f0r_param_string*)p = s; }
*/
import "C"

import (
	"runtime/cgo"
	"sync"
	"unsafe"
)

// Descriptor strings live for the life of the process; hosts keep the
// pointers from f0r_get_plugin_info and f0r_get_param_info.
var (
	cstrings   = map[string]*C.char{}
	cstringsMu sync.Mutex
)

func staticString(s string) *C.char {
	cstringsMu.Lock()
	defer cstringsMu.Unlock()
	if cs, ok := cstrings[s]; ok {
		return cs
	}
	cs := C.CString(s)
	cstrings[s] = cs
	return cs
}

func handleOf(instance C.f0r_instance_t) cgo.Handle {
	return cgo.Handle(C.instance_to_handle(instance))
}

//export f0r_init
func f0r_init() C.int {
	if err := Init(); err != nil {
		Logger().WithError(err).Error("f0r_init failed")
		return 0
	}
	return 1
}

//export f0r_deinit
func f0r_deinit() {}

//export f0r_get_plugin_info
func f0r_get_plugin_info(info *C.f0r_plugin_info_t) {
	p := Registered()
	if p == nil || info == nil {
		return
	}
	pi := p.Info()
	info.name = staticString(pi.Name)
	info.author = staticString(pi.Author)
	info.plugin_type = C.int(pi.Type)
	info.color_model = C.int(pi.ColorModel)
	info.frei0r_version = C.FREI0R_MAJOR_VERSION
	info.major_version = C.int(pi.MajorVersion)
	info.minor_version = C.int(pi.MinorVersion)
	info.num_params = C.int(len(p.Params()))
	info.explanation = staticString(pi.Explanation)
}

//export f0r_get_param_info
func f0r_get_param_info(info *C.f0r_param_info_t, index C.int) {
	p := Registered()
	if p == nil || info == nil {
		return
	}
	params := p.Params()
	if index < 0 || int(index) >= len(params) {
		return
	}
	pi := params[index]
	info.name = staticString(pi.Name)
	info._type = C.int(pi.Type)
	info.explanation = staticString(pi.Explanation)
}

//export f0r_construct
func f0r_construct(width, height C.uint) C.f0r_instance_t {
	h, err := Construct(int(width), int(height))
	if err != nil {
		Logger().WithError(err).Error("f0r_construct failed")
		return nil
	}
	return C.handle_to_instance(C.uintptr_t(h))
}

//export f0r_destruct
func f0r_destruct(instance C.f0r_instance_t) {
	for _, p := range Destruct(handleOf(instance)) {
		C.free(p)
	}
}

//export f0r_set_param_value
func f0r_set_param_value(instance C.f0r_instance_t, param C.f0r_param_t, index C.int) {
	if param == nil {
		return
	}
	cs := C.param_string_get(param)
	if cs == nil {
		return
	}
	SetParamValue(handleOf(instance), int(index), C.GoString(cs))
}

//export f0r_get_param_value
func f0r_get_param_value(instance C.f0r_instance_t, param C.f0r_param_t, index C.int) {
	if param == nil {
		return
	}
	h := handleOf(instance)
	v, ok := ParamValue(h, int(index))
	if !ok {
		return
	}
	cs := C.CString(v)
	if previous := Retain(h, int(index), unsafe.Pointer(cs)); previous != nil {
		C.free(previous)
	}
	C.param_string_set(param, cs)
}

//export f0r_update
func f0r_update(instance C.f0r_instance_t, time C.double, inframe *C.uint32_t, outframe *C.uint32_t) {
	update(instance, time, inframe, outframe)
}

//export f0r_update2
func f0r_update2(instance C.f0r_instance_t, time C.double, inframe1, inframe2, inframe3 *C.uint32_t, outframe *C.uint32_t) {
	update(instance, time, inframe1, outframe)
}

func update(instance C.f0r_instance_t, time C.double, inframe, outframe *C.uint32_t) {
	h := handleOf(instance)
	n := FrameBytes(h)
	if n == 0 || inframe == nil || outframe == nil {
		return
	}
	in := unsafe.Slice((*byte)(unsafe.Pointer(inframe)), n)
	out := unsafe.Slice((*byte)(unsafe.Pointer(outframe)), n)
	Update(h, float64(time), in, out)
}

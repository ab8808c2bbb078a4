// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/hsvcube/base/errors"
	"github.com/spf13/pflag"
)

// AddFlags adds a flag to fs for each field of the given config object
// that has a `flag:` struct tag, descending into struct fields. The tag
// is either the long flag name or "short,long", and the `desc:` tag is
// the usage. Each flag is bound to its field, with the current field
// value as the default.
func AddFlags(fs *pflag.FlagSet, cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config.AddFlags: expected a pointer to a struct, got %T", cfg)
	}
	return addFlags(fs, v.Elem())
}

func addFlags(fs *pflag.FlagSet, v reflect.Value) error {
	typ := v.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, addFlags(fs, fv))
			continue
		}
		tag, ok := f.Tag.Lookup("flag")
		if !ok {
			continue
		}
		short, long := "", tag
		if s, l, ok := strings.Cut(tag, ","); ok {
			short, long = s, l
		}
		usage := f.Tag.Get("desc")
		switch p := fv.Addr().Interface().(type) {
		case *string:
			fs.StringVarP(p, long, short, *p, usage)
		case *bool:
			fs.BoolVarP(p, long, short, *p, usage)
		case *int:
			fs.IntVarP(p, long, short, *p, usage)
		case *float32:
			fs.Float32VarP(p, long, short, *p, usage)
		default:
			errs = append(errs, fmt.Errorf("field %s: unsupported flag type %v", f.Name, f.Type))
		}
	}
	return errors.Join(errs...)
}

// SetFromFlags sets the fields of the given config object from the
// flags in fs that were explicitly set, leaving all other fields as
// they are. Flags in fs that do not belong to the config are ignored.
func SetFromFlags(cfg any, fs *pflag.FlagSet) error {
	cfs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	if err := AddFlags(cfs, cfg); err != nil {
		return err
	}
	var errs []error
	fs.Visit(func(f *pflag.Flag) {
		if cfs.Lookup(f.Name) == nil {
			return
		}
		errs = append(errs, cfs.Set(f.Name, f.Value.String()))
	})
	return errors.Join(errs...)
}

package config

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

type hclFile struct {
	Algorithm    string            `hcl:"algorithm,optional"`
	LogLevel     string            `hcl:"log_level,optional"`
	CacheDir     string            `hcl:"cache_dir,optional"`
	Center       bool              `hcl:"center,optional"`
	Root         string            `hcl:"root,optional"`
	AnyRoot      bool              `hcl:"any_root,optional"`
	Supergraph   []int             `hcl:"supergraph,optional"`
	AllowOffAxis bool              `hcl:"allow_off_axis,optional"`
	Net          string            `hcl:"net,optional"`
	LinkData     *cty.Value        `hcl:"link_data,optional"`
	Environments []*hclEnvironment `hcl:"environment,block"`
	Links        []*hclLink        `hcl:"link,block"`
}

type hclEnvironment struct {
	ID    string     `hcl:"id,label"`
	ISite int        `hcl:"isite"`
	Data  *cty.Value `hcl:"data,optional"`
}

type hclLink struct {
	From  string     `hcl:"from"`
	To    string     `hcl:"to"`
	Delta []int      `hcl:"delta,optional"`
	Start *int       `hcl:"start,optional"`
	End   *int       `hcl:"end,optional"`
	Data  *cty.Value `hcl:"data,optional"`
}

// LoadHCL decodes an HCL configuration; name is used in diagnostics.
func LoadHCL(name string, src []byte) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, diags.Error())
	}
	var raw hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, diags.Error())
	}

	cfg, err := raw.config()
	if err != nil {
		return nil, err
	}

	return finish(cfg)
}

func (f *hclFile) config() (*Config, error) {
	cfg := &Config{
		Algorithm:    f.Algorithm,
		LogLevel:     f.LogLevel,
		CacheDir:     f.CacheDir,
		Center:       f.Center,
		Root:         f.Root,
		AnyRoot:      f.AnyRoot,
		Supergraph:   f.Supergraph,
		AllowOffAxis: f.AllowOffAxis,
		Net:          f.Net,
	}
	if len(f.Environments) == 0 && len(f.Links) == 0 && f.LinkData == nil {
		return cfg, nil
	}

	doc := &ComponentDoc{}
	var err error
	if doc.LinkData, err = ctyMap("link_data", f.LinkData); err != nil {
		return nil, err
	}
	for _, e := range f.Environments {
		env := EnvironmentDoc{ID: e.ID, ISite: e.ISite}
		if env.Data, err = ctyMap(fmt.Sprintf("environment %q data", e.ID), e.Data); err != nil {
			return nil, err
		}
		doc.Environments = append(doc.Environments, env)
	}
	for i, l := range f.Links {
		link := LinkDoc{From: l.From, To: l.To, Delta: l.Delta, Start: l.Start, End: l.End}
		if link.Data, err = ctyMap(fmt.Sprintf("link %d data", i), l.Data); err != nil {
			return nil, err
		}
		doc.Links = append(doc.Links, link)
	}
	cfg.Component = doc

	return cfg, nil
}

// ctyMap converts an HCL object value to plain Go data through its JSON form.
func ctyMap(what string, v *cty.Value) (map[string]interface{}, error) {
	if v == nil || v.IsNull() {
		return nil, nil
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidConfig, what)
	}
	raw, err := ctyjson.Marshal(*v, v.Type())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, what, err)
	}
	var out map[string]interface{}
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, what, err)
	}

	return out, nil
}

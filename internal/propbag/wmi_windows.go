//go:build windows

package propbag

import (
	"context"
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/scjalliance/comshim"
)

// DefaultNamespace is the CIM namespace holding the Win32_* hardware classes.
const DefaultNamespace = `root\cimv2`

// WMIProvider queries WMI through the SWbemLocator scripting interface and
// returns every property of every instance as a Bag.
type WMIProvider struct {
	namespace string
}

// NewWMIProvider connects once to namespace so that a missing or denied
// WMI service is reported at startup rather than per class.
func NewWMIProvider(namespace string) (*WMIProvider, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	p := &WMIProvider{namespace: namespace}
	err := p.withService(func(*ole.IDispatch) error { return nil })
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Query runs "SELECT * FROM class".
func (p *WMIProvider) Query(ctx context.Context, class string) ([]Bag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var bags []Bag
	err := p.withService(func(service *ole.IDispatch) error {
		resultRaw, err := oleutil.CallMethod(service, "ExecQuery", "SELECT * FROM "+class)
		if err != nil {
			return fmt.Errorf("execute query on %s: %w", class, err)
		}
		result := resultRaw.ToIDispatch()
		defer result.Release()

		countVar, err := oleutil.GetProperty(result, "Count")
		if err != nil {
			return fmt.Errorf("get result count for %s: %w", class, err)
		}
		count := int(countVar.Val)
		_ = countVar.Clear()

		bags = make([]Bag, 0, count)
		for i := 0; i < count; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			bag, err := readItem(result, i)
			if err != nil {
				return fmt.Errorf("read %s item %d: %w", class, i, err)
			}
			bags = append(bags, bag)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bags, nil
}

func (p *WMIProvider) withService(fn func(service *ole.IDispatch) error) error {
	comshim.Add(1)
	defer comshim.Done()

	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return fmt.Errorf("%w: create locator: %v", ErrUnavailable, err)
	}
	defer unknown.Release()

	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("%w: locator dispatch: %v", ErrUnavailable, err)
	}
	defer locator.Release()

	serviceRaw, err := oleutil.CallMethod(locator, "ConnectServer", nil, p.namespace)
	if err != nil {
		return fmt.Errorf("%w: connect %s: %v", ErrUnavailable, p.namespace, err)
	}
	service := serviceRaw.ToIDispatch()
	defer service.Release()

	return fn(service)
}

func readItem(result *ole.IDispatch, i int) (Bag, error) {
	itemRaw, err := oleutil.CallMethod(result, "ItemIndex", i)
	if err != nil {
		return nil, err
	}
	item := itemRaw.ToIDispatch()
	defer item.Release()

	propsRaw, err := oleutil.GetProperty(item, "Properties_")
	if err != nil {
		return nil, err
	}
	props := propsRaw.ToIDispatch()
	defer props.Release()

	bag := Bag{}
	err = oleutil.ForEach(props, func(v *ole.VARIANT) error {
		prop := v.ToIDispatch()

		nameVar, err := oleutil.GetProperty(prop, "Name")
		if err != nil {
			return err
		}
		name := nameVar.ToString()
		_ = nameVar.Clear()

		valueVar, err := oleutil.GetProperty(prop, "Value")
		if err != nil {
			return err
		}
		defer valueVar.Clear()

		bag[name] = variantValue(valueVar)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bag, nil
}

func variantValue(v *ole.VARIANT) any {
	if v.VT&ole.VT_ARRAY != 0 {
		arr := v.ToArray()
		if arr == nil {
			return nil
		}
		return arr.ToValueArray()
	}
	return v.Value()
}

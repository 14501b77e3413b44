package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	// Shop
	&Product{},
	&Cart{},
	&CartItem{},
}

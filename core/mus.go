package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the types the storage layer persists. Field order
// is part of the wire format; append new fields at the end.
var (
	// IDMUS serializes an ID as a varint.
	IDMUS = idMUS{}
	// CoordinatesMUS serializes a coordinate pair.
	CoordinatesMUS = coordinatesMUS{}
	// POIMUS serializes a POI record.
	POIMUS = poiMUS{}
	// SynonymGroupMUS serializes a synonym group.
	SynonymGroupMUS = synonymGroupMUS{}
)

var stringSliceMUS = ord.NewSliceSer[string](ord.String)

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	num, n, err := varint.Uint64.Unmarshal(bs)
	return ID(num), n, err
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

type coordinatesMUS struct{}

func (s coordinatesMUS) Marshal(v Coordinates, bs []byte) (n int) {
	n = varint.Float64.Marshal(v.Lat, bs)
	n += varint.Float64.Marshal(v.Lon, bs[n:])
	return
}

func (s coordinatesMUS) Unmarshal(bs []byte) (v Coordinates, n int, err error) {
	v.Lat, n, err = varint.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Lon, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s coordinatesMUS) Size(v Coordinates) (size int) {
	size = varint.Float64.Size(v.Lat)
	size += varint.Float64.Size(v.Lon)
	return
}

func (s coordinatesMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Float64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

type poiMUS struct{}

func (s poiMUS) Marshal(v POI, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += CoordinatesMUS.Marshal(v.Location, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += stringSliceMUS.Marshal(v.Tags, bs[n:])
	n += varint.Float64.Marshal(v.Rating, bs[n:])
	n += varint.Int.Marshal(v.VisitMinutes, bs[n:])
	return
}

func (s poiMUS) Unmarshal(bs []byte) (v POI, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = CoordinatesMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tags, n1, err = stringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Rating, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.VisitMinutes, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s poiMUS) Size(v POI) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += CoordinatesMUS.Size(v.Location)
	size += ord.String.Size(v.Category)
	size += stringSliceMUS.Size(v.Tags)
	size += varint.Float64.Size(v.Rating)
	size += varint.Int.Size(v.VisitMinutes)
	return
}

func (s poiMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = CoordinatesMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = stringSliceMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

type synonymGroupMUS struct{}

func (s synonymGroupMUS) Marshal(v SynonymGroup, bs []byte) (n int) {
	n = ord.String.Marshal(v.Key, bs)
	n += stringSliceMUS.Marshal(v.Tokens, bs[n:])
	return
}

func (s synonymGroupMUS) Unmarshal(bs []byte) (v SynonymGroup, n int, err error) {
	v.Key, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Tokens, n1, err = stringSliceMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s synonymGroupMUS) Size(v SynonymGroup) (size int) {
	size = ord.String.Size(v.Key)
	size += stringSliceMUS.Size(v.Tokens)
	return
}

func (s synonymGroupMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = stringSliceMUS.Skip(bs[n:])
	n += n1
	return
}

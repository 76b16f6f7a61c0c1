// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: snapdish/v1/snapdish.proto

package snapdishv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CaptureService_CaptureRecipe_FullMethodName      = "/snapdish.v1.CaptureService/CaptureRecipe"
	CaptureService_CaptureRecipeBatch_FullMethodName = "/snapdish.v1.CaptureService/CaptureRecipeBatch"
	CaptureService_EnqueueCapture_FullMethodName     = "/snapdish.v1.CaptureService/EnqueueCapture"
	CaptureService_GetDiagnostics_FullMethodName     = "/snapdish.v1.CaptureService/GetDiagnostics"
)

// CaptureServiceClient is the client API for CaptureService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CaptureService turns recipe photos into structured recipes.
type CaptureServiceClient interface {
	// CaptureRecipe runs the full pipeline for one image and returns the
	// structured recipe. Set persist=false for a preview that skips storage.
	CaptureRecipe(ctx context.Context, in *CaptureRecipeRequest, opts ...grpc.CallOption) (*CaptureRecipeResponse, error)
	// CaptureRecipeBatch processes several images concurrently. It fails only
	// when every image fails; otherwise per-image errors ride alongside the
	// recipes that succeeded.
	CaptureRecipeBatch(ctx context.Context, in *CaptureRecipeBatchRequest, opts ...grpc.CallOption) (*CaptureRecipeBatchResponse, error)
	// EnqueueCapture submits an image for background processing and returns
	// immediately with a job id.
	EnqueueCapture(ctx context.Context, in *EnqueueCaptureRequest, opts ...grpc.CallOption) (*EnqueueCaptureResponse, error)
	// GetDiagnostics reports the most recent extraction confidence and source
	// plus the parser's running-average confidence.
	GetDiagnostics(ctx context.Context, in *GetDiagnosticsRequest, opts ...grpc.CallOption) (*GetDiagnosticsResponse, error)
}

type captureServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCaptureServiceClient(cc grpc.ClientConnInterface) CaptureServiceClient {
	return &captureServiceClient{cc}
}

func (c *captureServiceClient) CaptureRecipe(ctx context.Context, in *CaptureRecipeRequest, opts ...grpc.CallOption) (*CaptureRecipeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CaptureRecipeResponse)
	err := c.cc.Invoke(ctx, CaptureService_CaptureRecipe_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) CaptureRecipeBatch(ctx context.Context, in *CaptureRecipeBatchRequest, opts ...grpc.CallOption) (*CaptureRecipeBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CaptureRecipeBatchResponse)
	err := c.cc.Invoke(ctx, CaptureService_CaptureRecipeBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) EnqueueCapture(ctx context.Context, in *EnqueueCaptureRequest, opts ...grpc.CallOption) (*EnqueueCaptureResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueCaptureResponse)
	err := c.cc.Invoke(ctx, CaptureService_EnqueueCapture_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) GetDiagnostics(ctx context.Context, in *GetDiagnosticsRequest, opts ...grpc.CallOption) (*GetDiagnosticsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDiagnosticsResponse)
	err := c.cc.Invoke(ctx, CaptureService_GetDiagnostics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CaptureServiceServer is the server API for CaptureService service.
// All implementations must embed UnimplementedCaptureServiceServer
// for forward compatibility.
//
// CaptureService turns recipe photos into structured recipes.
type CaptureServiceServer interface {
	// CaptureRecipe runs the full pipeline for one image and returns the
	// structured recipe. Set persist=false for a preview that skips storage.
	CaptureRecipe(context.Context, *CaptureRecipeRequest) (*CaptureRecipeResponse, error)
	// CaptureRecipeBatch processes several images concurrently. It fails only
	// when every image fails; otherwise per-image errors ride alongside the
	// recipes that succeeded.
	CaptureRecipeBatch(context.Context, *CaptureRecipeBatchRequest) (*CaptureRecipeBatchResponse, error)
	// EnqueueCapture submits an image for background processing and returns
	// immediately with a job id.
	EnqueueCapture(context.Context, *EnqueueCaptureRequest) (*EnqueueCaptureResponse, error)
	// GetDiagnostics reports the most recent extraction confidence and source
	// plus the parser's running-average confidence.
	GetDiagnostics(context.Context, *GetDiagnosticsRequest) (*GetDiagnosticsResponse, error)
	mustEmbedUnimplementedCaptureServiceServer()
}

// UnimplementedCaptureServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCaptureServiceServer struct{}

func (UnimplementedCaptureServiceServer) CaptureRecipe(context.Context, *CaptureRecipeRequest) (*CaptureRecipeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CaptureRecipe not implemented")
}
func (UnimplementedCaptureServiceServer) CaptureRecipeBatch(context.Context, *CaptureRecipeBatchRequest) (*CaptureRecipeBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CaptureRecipeBatch not implemented")
}
func (UnimplementedCaptureServiceServer) EnqueueCapture(context.Context, *EnqueueCaptureRequest) (*EnqueueCaptureResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueCapture not implemented")
}
func (UnimplementedCaptureServiceServer) GetDiagnostics(context.Context, *GetDiagnosticsRequest) (*GetDiagnosticsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDiagnostics not implemented")
}
func (UnimplementedCaptureServiceServer) mustEmbedUnimplementedCaptureServiceServer() {}
func (UnimplementedCaptureServiceServer) testEmbeddedByValue()                        {}

// UnsafeCaptureServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CaptureServiceServer will
// result in compilation errors.
type UnsafeCaptureServiceServer interface {
	mustEmbedUnimplementedCaptureServiceServer()
}

func RegisterCaptureServiceServer(s grpc.ServiceRegistrar, srv CaptureServiceServer) {
	// If the following call pancis, it indicates UnimplementedCaptureServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CaptureService_ServiceDesc, srv)
}

func _CaptureService_CaptureRecipe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CaptureRecipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).CaptureRecipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_CaptureRecipe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).CaptureRecipe(ctx, req.(*CaptureRecipeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_CaptureRecipeBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CaptureRecipeBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).CaptureRecipeBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_CaptureRecipeBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).CaptureRecipeBatch(ctx, req.(*CaptureRecipeBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_EnqueueCapture_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueCaptureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).EnqueueCapture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_EnqueueCapture_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).EnqueueCapture(ctx, req.(*EnqueueCaptureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_GetDiagnostics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDiagnosticsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).GetDiagnostics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_GetDiagnostics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).GetDiagnostics(ctx, req.(*GetDiagnosticsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CaptureService_ServiceDesc is the grpc.ServiceDesc for CaptureService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CaptureService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "snapdish.v1.CaptureService",
	HandlerType: (*CaptureServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CaptureRecipe",
			Handler:    _CaptureService_CaptureRecipe_Handler,
		},
		{
			MethodName: "CaptureRecipeBatch",
			Handler:    _CaptureService_CaptureRecipeBatch_Handler,
		},
		{
			MethodName: "EnqueueCapture",
			Handler:    _CaptureService_EnqueueCapture_Handler,
		},
		{
			MethodName: "GetDiagnostics",
			Handler:    _CaptureService_GetDiagnostics_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "snapdish/v1/snapdish.proto",
}

const (
	RecipesService_GetRecipe_FullMethodName     = "/snapdish.v1.RecipesService/GetRecipe"
	RecipesService_ListRecipes_FullMethodName   = "/snapdish.v1.RecipesService/ListRecipes"
	RecipesService_ArchiveRecipe_FullMethodName = "/snapdish.v1.RecipesService/ArchiveRecipe"
	RecipesService_DeleteRecipe_FullMethodName  = "/snapdish.v1.RecipesService/DeleteRecipe"
)

// RecipesServiceClient is the client API for RecipesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RecipesService reads and manages stored recipes.
type RecipesServiceClient interface {
	GetRecipe(ctx context.Context, in *GetRecipeRequest, opts ...grpc.CallOption) (*GetRecipeResponse, error)
	ListRecipes(ctx context.Context, in *ListRecipesRequest, opts ...grpc.CallOption) (*ListRecipesResponse, error)
	ArchiveRecipe(ctx context.Context, in *ArchiveRecipeRequest, opts ...grpc.CallOption) (*ArchiveRecipeResponse, error)
	DeleteRecipe(ctx context.Context, in *DeleteRecipeRequest, opts ...grpc.CallOption) (*DeleteRecipeResponse, error)
}

type recipesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRecipesServiceClient(cc grpc.ClientConnInterface) RecipesServiceClient {
	return &recipesServiceClient{cc}
}

func (c *recipesServiceClient) GetRecipe(ctx context.Context, in *GetRecipeRequest, opts ...grpc.CallOption) (*GetRecipeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRecipeResponse)
	err := c.cc.Invoke(ctx, RecipesService_GetRecipe_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipesServiceClient) ListRecipes(ctx context.Context, in *ListRecipesRequest, opts ...grpc.CallOption) (*ListRecipesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRecipesResponse)
	err := c.cc.Invoke(ctx, RecipesService_ListRecipes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipesServiceClient) ArchiveRecipe(ctx context.Context, in *ArchiveRecipeRequest, opts ...grpc.CallOption) (*ArchiveRecipeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ArchiveRecipeResponse)
	err := c.cc.Invoke(ctx, RecipesService_ArchiveRecipe_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipesServiceClient) DeleteRecipe(ctx context.Context, in *DeleteRecipeRequest, opts ...grpc.CallOption) (*DeleteRecipeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteRecipeResponse)
	err := c.cc.Invoke(ctx, RecipesService_DeleteRecipe_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecipesServiceServer is the server API for RecipesService service.
// All implementations must embed UnimplementedRecipesServiceServer
// for forward compatibility.
//
// RecipesService reads and manages stored recipes.
type RecipesServiceServer interface {
	GetRecipe(context.Context, *GetRecipeRequest) (*GetRecipeResponse, error)
	ListRecipes(context.Context, *ListRecipesRequest) (*ListRecipesResponse, error)
	ArchiveRecipe(context.Context, *ArchiveRecipeRequest) (*ArchiveRecipeResponse, error)
	DeleteRecipe(context.Context, *DeleteRecipeRequest) (*DeleteRecipeResponse, error)
	mustEmbedUnimplementedRecipesServiceServer()
}

// UnimplementedRecipesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRecipesServiceServer struct{}

func (UnimplementedRecipesServiceServer) GetRecipe(context.Context, *GetRecipeRequest) (*GetRecipeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRecipe not implemented")
}
func (UnimplementedRecipesServiceServer) ListRecipes(context.Context, *ListRecipesRequest) (*ListRecipesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRecipes not implemented")
}
func (UnimplementedRecipesServiceServer) ArchiveRecipe(context.Context, *ArchiveRecipeRequest) (*ArchiveRecipeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ArchiveRecipe not implemented")
}
func (UnimplementedRecipesServiceServer) DeleteRecipe(context.Context, *DeleteRecipeRequest) (*DeleteRecipeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteRecipe not implemented")
}
func (UnimplementedRecipesServiceServer) mustEmbedUnimplementedRecipesServiceServer() {}
func (UnimplementedRecipesServiceServer) testEmbeddedByValue()                        {}

// UnsafeRecipesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RecipesServiceServer will
// result in compilation errors.
type UnsafeRecipesServiceServer interface {
	mustEmbedUnimplementedRecipesServiceServer()
}

func RegisterRecipesServiceServer(s grpc.ServiceRegistrar, srv RecipesServiceServer) {
	// If the following call pancis, it indicates UnimplementedRecipesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RecipesService_ServiceDesc, srv)
}

func _RecipesService_GetRecipe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRecipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecipesServiceServer).GetRecipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecipesService_GetRecipe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecipesServiceServer).GetRecipe(ctx, req.(*GetRecipeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecipesService_ListRecipes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRecipesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecipesServiceServer).ListRecipes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecipesService_ListRecipes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecipesServiceServer).ListRecipes(ctx, req.(*ListRecipesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecipesService_ArchiveRecipe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ArchiveRecipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecipesServiceServer).ArchiveRecipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecipesService_ArchiveRecipe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecipesServiceServer).ArchiveRecipe(ctx, req.(*ArchiveRecipeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecipesService_DeleteRecipe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteRecipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecipesServiceServer).DeleteRecipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecipesService_DeleteRecipe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecipesServiceServer).DeleteRecipe(ctx, req.(*DeleteRecipeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RecipesService_ServiceDesc is the grpc.ServiceDesc for RecipesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RecipesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "snapdish.v1.RecipesService",
	HandlerType: (*RecipesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetRecipe",
			Handler:    _RecipesService_GetRecipe_Handler,
		},
		{
			MethodName: "ListRecipes",
			Handler:    _RecipesService_ListRecipes_Handler,
		},
		{
			MethodName: "ArchiveRecipe",
			Handler:    _RecipesService_ArchiveRecipe_Handler,
		},
		{
			MethodName: "DeleteRecipe",
			Handler:    _RecipesService_DeleteRecipe_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "snapdish/v1/snapdish.proto",
}

const (
	ExportService_ExportRecipes_FullMethodName = "/snapdish.v1.ExportService/ExportRecipes"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService produces recipe-book workbooks.
type ExportServiceClient interface {
	ExportRecipes(ctx context.Context, in *ExportRecipesRequest, opts ...grpc.CallOption) (*ExportRecipesResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportRecipes(ctx context.Context, in *ExportRecipesRequest, opts ...grpc.CallOption) (*ExportRecipesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportRecipesResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportRecipes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService produces recipe-book workbooks.
type ExportServiceServer interface {
	ExportRecipes(context.Context, *ExportRecipesRequest) (*ExportRecipesResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportRecipes(context.Context, *ExportRecipesRequest) (*ExportRecipesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportRecipes not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportRecipes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportRecipesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportRecipes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportRecipes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportRecipes(ctx, req.(*ExportRecipesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "snapdish.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportRecipes",
			Handler:    _ExportService_ExportRecipes_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "snapdish/v1/snapdish.proto",
}
